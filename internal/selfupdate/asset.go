package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

const binaryName = "numberquest"

// releaseAsset is the archive published for one platform and the binary
// it contains.
type releaseAsset struct {
	Archive string
	Binary  string
}

func currentAsset() (releaseAsset, error) {
	return assetFor(runtime.GOOS, runtime.GOARCH)
}

func assetFor(goos, goarch string) (releaseAsset, error) {
	if goos == "darwin" {
		return releaseAsset{Archive: binaryName + "_Darwin_all.tar.gz", Binary: binaryName}, nil
	}

	arch, ok := releaseArch[goarch]
	if !ok {
		return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return releaseAsset{
			Archive: fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch),
			Binary:  binaryName,
		}, nil
	case "windows":
		return releaseAsset{
			Archive: fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch),
			Binary:  binaryName + ".exe",
		}, nil
	}
	return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func (a releaseAsset) extract(archive []byte) ([]byte, error) {
	if strings.HasSuffix(a.Archive, ".zip") {
		return fromZip(archive, a.Binary)
	}
	return fromTarGz(archive, a.Binary)
}

func fromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func fromZip(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}
