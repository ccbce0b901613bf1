// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
// Parent directories are created as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// DescriptorSeed is the fabric.mod.json a fresh template checkout carries.
const DescriptorSeed = `{
  "schemaVersion": 1,
  "id": "modid",
  "version": "${version}",
  "name": "Example mod",
  "entrypoints": {
    "main": ["com.example.ExampleMod"]
  }
}`

// InitializerSeed is the mod initializer a fresh template checkout carries.
const InitializerSeed = `package com.example;

import net.fabricmc.api.ModInitializer;

public class ExampleMod implements ModInitializer {
	@Override
	public void onInitialize() {
	}
}
`

// SeedModProject lays out the minimal files of a Fabric example-mod checkout
// under root, so scaffold commands have something to operate on.
func SeedModProject(t *testing.T, root string) {
	t.Helper()
	WriteFile(t, root, filepath.Join("src", "main", "resources", "fabric.mod.json"), DescriptorSeed)
	WriteFile(t, root, filepath.Join("src", "main", "java", "com", "example", "ExampleMod.java"), InitializerSeed)
}
