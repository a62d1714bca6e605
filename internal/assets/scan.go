// Package assets finds and loads the background and sprite images.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/webp"
)

var backgroundExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ScanBackgrounds lists the background images in dir, sorted by name.
func ScanBackgrounds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read background directory: %w", err)
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if backgroundExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(found)
	return found, nil
}

// PickBackground returns a random entry, or "" for an empty list.
func PickBackground(rng *rand.Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.Intn(len(list))]
}

// SpritePath is where a sprite id is looked up under the assets directory.
func SpritePath(dir, spriteID string) string {
	return filepath.Join(dir, spriteID+".png")
}

// DecodeImage decodes a stored custom background.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
