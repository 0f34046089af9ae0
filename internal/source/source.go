// Package source reads Adamite program text off disk.
package source

import "os"

// Read slurps path as-is: raw bytes, no BOM handling, no encoding
// conversion.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
