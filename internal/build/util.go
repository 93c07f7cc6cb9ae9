// Package build holds helpers for the build/ci.go script.
package build

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DryRunFlag dry run flag
var DryRunFlag = flag.Bool("n", false, "dry run, don't execute commands")

// Environment is the git state stamped into binaries.
type Environment struct {
	Commit string
	Date   string
}

// Env reads the current commit and its date from git, empty outside a
// checkout.
func Env() *Environment {
	env := &Environment{Commit: RunGit("rev-parse", "HEAD")}
	if env.Commit != "" {
		env.Date = RunGit("show", "-s", "--format=%cd", "--date=format:%Y%m%d", env.Commit)
	}
	return env
}

// MustRun executes the given command and exits the host process for
// any error.
func MustRun(cmd *exec.Cmd) {
	fmt.Println(">>>", strings.Join(cmd.Args, " "))
	if !*DryRunFlag {
		cmd.Stderr = os.Stderr
		cmd.Stdout = os.Stdout
		if err := cmd.Run(); err != nil {
			log.Fatal(err)
		}
	}
}

var warnedAboutGit bool

// RunGit runs a git subcommand and returns its trimmed output, or "" when
// git is missing or fails.
func RunGit(args ...string) string {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		if !warnedAboutGit {
			log.Println("Warning: git", strings.Join(args, " "), "failed:", err, strings.TrimSpace(stderr.String()))
			warnedAboutGit = true
		}
		return ""
	}
	return strings.TrimSpace(stdout.String())
}

// GoTool returns the command that runs a go tool from GOROOT, so the tools
// match the Go version running this script.
func GoTool(tool string, args ...string) *exec.Cmd {
	args = append([]string{tool}, args...)
	return exec.Command(filepath.Join(runtime.GOROOT(), "bin", "go"), args...) //nolint:gosec // fixed binary
}
