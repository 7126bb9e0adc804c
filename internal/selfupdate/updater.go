package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// DevVersion is the version string of binaries not built by a release.
const DevVersion = "(devel)"

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage names a step of Update, reported through the progress callback.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

type UpdateInput struct {
	CurrentVersion string
	// TargetVersion pins a release tag; empty means the latest.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// asset describes the release archive for one platform.
type asset struct {
	archive string // file name on the release page
	binary  string // executable inside the archive
}

const (
	execName      = "mathdrill"
	checksumsFile = "checksums.txt"
)

// assetFor returns the goreleaser archive built for goos/goarch. macOS
// ships a single universal archive.
func assetFor(goos, goarch string) (asset, error) {
	if goos == "darwin" {
		return asset{archive: execName + "_Darwin_all.tar.gz", binary: execName}, nil
	}

	arch, ok := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}[goarch]
	if !ok {
		return asset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return asset{archive: fmt.Sprintf("%s_Linux_%s.tar.gz", execName, arch), binary: execName}, nil
	case "windows":
		return asset{archive: fmt.Sprintf("%s_Windows_%s.zip", execName, arch), binary: execName + ".exe"}, nil
	}
	return asset{}, fmt.Errorf("unsupported operating system: %s", goos)
}

// unpack pulls the executable out of an archive.
func (a asset) unpack(data []byte) ([]byte, error) {
	if strings.HasSuffix(a.archive, ".zip") {
		return fromZip(data, a.binary)
	}
	return fromTarGz(data, a.binary)
}

// Update installs the target release over the running executable after
// checking the archive against the release's checksums file. progress may
// be nil.
func (c *Checker) Update(ctx context.Context, in *UpdateInput, progress func(UpdateProgress)) error {
	if progress == nil {
		progress = func(UpdateProgress) {}
	}
	if in.CurrentVersion == "" || in.CurrentVersion == DevVersion {
		return ErrDevBuild
	}

	tag := in.TargetVersion
	if tag == "" {
		progress(UpdateProgress{StageCheck, "Checking for latest version..."})
		res, err := c.Check(ctx, &CheckInput{Version: in.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	a, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	progress(UpdateProgress{StageDownload, fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, tag, a.archive)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{StageVerify, "Verifying checksum..."})
	sums, err := c.fetch(ctx, tag, checksumsFile)
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(sums, a.archive)
	if err != nil {
		return err
	}
	if err := matchSHA256(archive, want); err != nil {
		return err
	}

	progress(UpdateProgress{StageExtract, "Extracting binary..."})
	bin, err := a.unpack(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{StageApply, "Applying update..."})
	exe, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceExecutable(exe, bin); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{StageDone, fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// fetch downloads one file attached to release tag.
func (c *Checker) fetch(ctx context.Context, tag, file string) ([]byte, error) {
	url := strings.TrimRight(c.downloadBaseURL, "/") + "/" +
		path.Join(c.owner, c.repo, "releases", "download", tag, file)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds name in sha256sum output. Lines look like
// "<hex>  <name>", with "*<name>" in binary mode.
func checksumFor(sums []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && strings.TrimPrefix(fields[1], "*") == name {
			return strings.ToLower(fields[0]), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", checksumsFile, err)
	}
	return "", fmt.Errorf("no checksum for %s in %s", name, checksumsFile)
}

func matchSHA256(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
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
		if errors.Is(err, io.EOF) {
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

// replaceExecutable writes bin next to target and renames it into place,
// keeping target's permissions. The temp copy is hashed again before the
// rename so a file changed on disk is never installed.
func replaceExecutable(target string, bin []byte) (err error) {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+execName+"-update-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	written, err := os.ReadFile(tmp.Name())
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	want := sha256.Sum256(bin)
	if err = matchSHA256(written, hex.EncodeToString(want[:])); err != nil {
		return fmt.Errorf("temp file changed after write: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
