// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	stdimage "image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajroetker/pixelwise/hwy/contrib/image"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// readGray decodes any registered format and converts it to 8-bit gray.
func readGray(path string) (*image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	src, format, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.Debug("decoded image", "path", path, "format", format,
		"width", src.Bounds().Dx(), "height", src.Bounds().Dy())
	return image.FromGray(toGray(src)), nil
}

func toGray(src stdimage.Image) *stdimage.Gray {
	if g, ok := src.(*stdimage.Gray); ok {
		return g
	}
	b := src.Bounds()
	g := stdimage.NewGray(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), src, b.Min, draw.Src)
	return g
}

// writeGray encodes img in the format named by the extension of path.
func writeGray(path string, img *image.Image) (err error) {
	g := img.ToGray()
	if g == nil {
		return fmt.Errorf("cannot encode %d-channel image as gray", img.ColorCount())
	}

	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, g) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, g) }
	case ".tif", ".tiff":
		encode = func(f *os.File) error {
			return tiff.Encode(f, g, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := encode(f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
