package selfupdate

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Step names a phase of an update.
type Step string

const (
	StepCheck    Step = "check"
	StepDownload Step = "download"
	StepVerify   Step = "verify"
	StepExtract  Step = "extract"
	StepApply    Step = "apply"
	StepDone     Step = "done"
)

// Progress is reported once per Step.
type Progress struct {
	Step    Step
	Message string
}

// DevVersion is the version string of a build without release ldflags.
const DevVersion = "(devel)"

// Update downloads the release after current, verifies it against the
// published checksums and swaps it in for the running binary. An empty
// target means the latest release.
func (c *Checker) Update(ctx context.Context, current, target string, report func(Progress)) error {
	if current == DevVersion {
		return ErrDevBuild
	}

	if target == "" {
		report(Progress{Step: StepCheck, Message: "Checking for latest version..."})
		rel, err := c.Latest(ctx, current)
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !rel.Newer {
			return ErrAlreadyLatest
		}
		target = rel.Version
	}

	asset, err := currentAsset()
	if err != nil {
		return err
	}

	releaseURL := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, target)

	report(Progress{Step: StepDownload, Message: fmt.Sprintf("Downloading %s...", target)})
	archive, err := c.fetch(ctx, releaseURL+"/"+asset.Archive)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(Progress{Step: StepVerify, Message: "Verifying checksum..."})
	sums, err := c.fetch(ctx, releaseURL+"/checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums)[asset.Archive]
	if !ok {
		return fmt.Errorf("no checksum found for %s in checksums.txt", asset.Archive)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return err
	}

	report(Progress{Step: StepExtract, Message: "Extracting binary..."})
	bin, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(Progress{Step: StepApply, Message: "Applying update..."})
	path, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	sum := sha256.Sum256(bin)
	if err := replaceBinary(path, bin, sum[:]); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(Progress{Step: StepDone, Message: fmt.Sprintf("Updated to %s", target)})
	return nil
}
