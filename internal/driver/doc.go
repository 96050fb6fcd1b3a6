// Package driver implements web server specific site management.
//
// A Driver performs every filesystem mutation (symlink creation and
// removal, file creation and deletion) and every server interaction
// (config test, reload) for one web server. The nginx and apache
// drivers share the sites-available/sites-enabled convention; apache's
// maps site names onto .conf file names, matching the a2ensite family
// of tools.
//
// Drivers never prompt and never check privileges; that orchestration
// belongs to the cli package. External commands run through the
// executor package so tests can intercept them, and MockDriver records
// calls for tests of the layer above.
package driver
