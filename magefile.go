//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary       = "bin/analogue"
	buildinfoPkg = "github.com/matzehuels/analogue/pkg/buildinfo"
)

// Default target - build the binary
var Default = Build

// Build builds the analogue binary with version information.
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/analogue")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs formatting, vet and tests.
func QA() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	mg.SerialDeps(Vet, Test)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "none"
	}
	flags := []string{
		"-X " + buildinfoPkg + ".Version=" + version,
		"-X " + buildinfoPkg + ".Commit=" + commit,
		"-X " + buildinfoPkg + ".Date=" + time.Now().UTC().Format(time.RFC3339),
	}
	return strings.Join(flags, " ")
}
