//go:build mage

// Package main contains Mage build targets for catalog-export developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "catalog-export"
	cmdPkg  = "./cmd/catalog-export"
)

// Init creates the directories the tool expects (.secrets/ for API keys).
func Init() error {
	if err := os.MkdirAll(".secrets", 0o700); err != nil {
		return fmt.Errorf("creating .secrets: %w", err)
	}
	fmt.Println("Initialized .secrets/ (place your OpenML key in .secrets/openml-api-key)")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs vet and the test suite.
func Check() error {
	mg.Deps(Vet)
	return Test()
}

// Vet runs go vet over all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output and export artifacts from the working directory.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	for _, f := range []string{
		"dataset_descriptions.csv",
		"dataset_descriptions.json",
		"dataset_descriptions.yaml",
		"dataset_descriptions.db",
	} {
		if err := sh.Rm(f); err != nil {
			return err
		}
	}
	return nil
}
