//go:build mage

// Package main provides build targets for the quirk project using Mage.
//
// Usage:
//
//	mage build        Compile the quirk binary to bin/
//	mage test:all     Run every test with the race detector
//	mage test:cover   Run tests and write coverage.out
//	mage lint         Run golangci-lint
//	mage clean        Remove build artifacts
//	mage install      Install quirk to GOPATH/bin
//	mage stats        Print Go lines of code per top-level package
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	binLint      = "golangci-lint"
	binaryName   = "quirk"
	binaryDir    = "bin"
	cmdDir       = "./cmd/quirk"
	coverProfile = "coverage.out"
)

// Build compiles the quirk binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test groups test targets.
type Test mg.Namespace

// All runs every package's tests with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover runs the tests and prints per-function coverage.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts and the coverage profile.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Stats prints Go lines of code for cmd/, internal/ and pkg/, split into
// production and test lines.
func Stats() error {
	type counts struct{ prod, test int }
	byPkg := map[string]*counts{}

	for _, root := range []string{"cmd", "internal", "pkg"} {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
				return err
			}
			n, err := countLines(path)
			if err != nil {
				return err
			}
			pkg := filepath.Dir(path)
			c, ok := byPkg[pkg]
			if !ok {
				c = &counts{}
				byPkg[pkg] = c
			}
			if strings.HasSuffix(path, "_test.go") {
				c.test += n
			} else {
				c.prod += n
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	pkgs := make([]string, 0, len(byPkg))
	for p := range byPkg {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)

	var total counts
	fmt.Printf("%-20s %8s %8s\n", "package", "prod", "test")
	for _, p := range pkgs {
		c := byPkg[p]
		fmt.Printf("%-20s %8d %8d\n", p, c.prod, c.test)
		total.prod += c.prod
		total.test += c.test
	}
	fmt.Printf("%-20s %8d %8d\n", "total", total.prod, total.test)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
