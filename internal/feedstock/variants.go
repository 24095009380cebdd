package feedstock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	variantExt    = ".yaml"
	clobberPrefix = "clobber_"
)

// DiscoverVariants returns the CI variant names found in ciSupportDir,
// sorted by name. Clobber files, subdirectories (such as migrations/) and
// non-YAML files are skipped. A missing directory yields no variants.
func DiscoverVariants(ciSupportDir string) ([]string, error) {
	entries, err := os.ReadDir(ciSupportDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ciSupportDir, err)
	}

	var variants []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, clobberPrefix) {
			continue
		}
		variant, ok := strings.CutSuffix(name, variantExt)
		if !ok || variant == "" {
			continue
		}
		variants = append(variants, variant)
	}

	return variants, nil
}

// PlatformFromVariant derives the conda subdir from a variant name:
// linux_64_python3.12 becomes linux-64.
func PlatformFromVariant(variant string) (string, bool) {
	parts := strings.SplitN(variant, "_", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "-" + parts[1], true
}

// PlatformsFromVariants returns the distinct platforms of variants in
// first-seen order. Names that do not start with os_arch are ignored.
func PlatformsFromVariants(variants []string) []string {
	seen := make(map[string]bool)
	var platforms []string
	for _, v := range variants {
		platform, ok := PlatformFromVariant(v)
		if !ok || seen[platform] {
			continue
		}
		seen[platform] = true
		platforms = append(platforms, platform)
	}
	return platforms
}
