package cli

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the managed web server setup.

Checks:
  - Web server binary present on PATH, with version
  - Configuration directories resolvable from the compiled-in config path
  - Configuration test result
  - Dangling symlinks in sites-enabled

Examples:
  sitectl doctor
  sitectl doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Server []CheckResult `json:"server"`
	Sites  []CheckResult `json:"sites"`
}

// serverBinaries maps the driver name to the binary whose presence and
// version are checked.
var serverBinaries = map[string]struct {
	binary      string
	versionFlag string
	versionRe   *regexp.Regexp
}{
	"nginx":  {"nginx", "-v", regexp.MustCompile(`nginx/(\d+\.\d+\.\d+)`)},
	"apache": {"apache2ctl", "-v", regexp.MustCompile(`Apache/(\d+\.\d+\.\d+)`)},
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := &DoctorReport{}

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return err
	}
	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	report.Server = checkServer(server)

	// Directory and site checks only make sense once paths resolve.
	if _, drv, err := resolveDriver(); err != nil {
		report.Server = append(report.Server, CheckResult{
			Status:  "error",
			Message: err.Error(),
		})
	} else {
		if err := drv.Test(); err != nil {
			report.Server = append(report.Server, CheckResult{
				Status:  "error",
				Message: "configuration test failed: " + err.Error(),
			})
		} else {
			report.Server = append(report.Server, CheckResult{
				Status:  "success",
				Message: "configuration test passed",
			})
		}
		report.Sites = checkEnabledLinks(drv.Paths().Enabled)
	}

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

// checkServer verifies the server binary is installed and extracts its
// version.
func checkServer(server string) []CheckResult {
	spec, ok := serverBinaries[server]
	if !ok {
		return []CheckResult{{
			Status:  "error",
			Message: "unsupported server " + server,
		}}
	}

	if _, err := deps.Exec.LookPath(spec.binary); err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: spec.binary + " not found on PATH",
		}}
	}

	version := "unknown"
	if out, err := deps.Exec.Execute(spec.binary, spec.versionFlag); err == nil || len(out) > 0 {
		if matches := spec.versionRe.FindSubmatch(out); len(matches) >= 2 {
			version = string(matches[1])
		}
	}

	return []CheckResult{{
		Status:  "success",
		Message: spec.binary + " installed (version " + version + ")",
	}}
}

// checkEnabledLinks scans sites-enabled for entries whose link target
// no longer exists.
func checkEnabledLinks(enabledDir string) []CheckResult {
	entries, err := os.ReadDir(enabledDir)
	if err != nil {
		return []CheckResult{{
			Status:  "error",
			Message: "cannot read " + enabledDir + ": " + err.Error(),
		}}
	}

	results := []CheckResult{}
	for _, entry := range entries {
		path := filepath.Join(enabledDir, entry.Name())

		info, err := os.Lstat(path)
		if err != nil {
			continue
		}
		if info.Mode()&os.ModeSymlink == 0 {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: entry.Name() + " is not a symlink",
			})
			continue
		}

		// Stat follows the link; failure means the target is gone.
		if _, err := os.Stat(path); err != nil {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: entry.Name() + " is a dangling symlink",
			})
			continue
		}

		results = append(results, CheckResult{
			Status:  "success",
			Message: entry.Name() + " links to an existing file",
		})
	}

	if len(results) == 0 {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "no enabled sites",
		})
	}

	return results
}

func displayDoctorResults(report *DoctorReport) {
	output.Header("Server:")
	for _, check := range report.Server {
		printCheck(check)
	}

	output.Header("Enabled sites:")
	for _, check := range report.Sites {
		printCheck(check)
	}
}

func printCheck(check CheckResult) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	default:
		output.Error("%s", check.Message)
	}
}
