package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/ui/output"
	"go.trai.ch/pinch/internal/ui/style"
	"go.trai.ch/zerr"
)

// FmtOptions configuration for the Fmt method.
type FmtOptions struct {
	Manifests []string
	Write     bool
}

// Fmt renders manifests in canonical form: declarations sorted by
// canonical name, attached comments kept above their declaration.
// Without Write the result goes to stdout; with Write files are
// rewritten in place when they differ.
func (a *App) Fmt(ctx context.Context, opts FmtOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	manifests, err := a.resolveManifests(project, opts.Manifests)
	if err != nil {
		return err
	}

	for _, path := range manifests {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Grammar findings do not block formatting: lines that fail to
		// parse survive canonicalization verbatim.
		m, _, err := a.loader.Load(path)
		if err != nil {
			return zerr.With(err, "manifest", path)
		}

		canonical := a.writer.Canonical(m)

		if !opts.Write {
			if _, err := a.stdout.Write(canonical); err != nil {
				return zerr.Wrap(err, "failed to write output")
			}
			continue
		}

		if bytes.Equal(canonical, a.writer.Render(m)) {
			continue
		}
		if err := a.writer.WriteFile(m, canonical); err != nil {
			return err
		}
		a.logger.Info("formatted " + path)
	}

	return nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Manifests []string
	JSON      bool
}

// manifestListing is the JSON shape of one listed manifest.
type manifestListing struct {
	Manifest     string               `json:"manifest"`
	Declarations []declarationListing `json:"declarations"`
}

type declarationListing struct {
	Name       string `json:"name"`
	Canonical  string `json:"canonical"`
	Constraint string `json:"constraint"`
}

// List prints the declarations of each manifest, ordered by canonical
// name. Manifests with grammar errors still list what did parse; the
// defects are logged so the gap is visible.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	manifests, err := a.resolveManifests(project, opts.Manifests)
	if err != nil {
		return err
	}

	listings := make([]manifestListing, 0, len(manifests))
	for _, path := range manifests {
		if err := ctx.Err(); err != nil {
			return err
		}

		m, findings, err := a.loader.Load(path)
		if err != nil {
			return zerr.With(err, "manifest", path)
		}
		for _, f := range findings {
			if f.Severity == domain.SeverityError {
				a.logger.Warn(f.String())
			}
		}

		decls := m.Declarations()
		slices.SortFunc(decls, func(x, y domain.Declaration) int {
			return strings.Compare(x.Canonical(), y.Canonical())
		})

		listing := manifestListing{
			Manifest:     m.Path,
			Declarations: make([]declarationListing, 0, len(decls)),
		}
		for _, decl := range decls {
			listing.Declarations = append(listing.Declarations, declarationListing{
				Name:       decl.Name.String(),
				Canonical:  decl.Canonical(),
				Constraint: decl.Constraint.String(),
			})
		}
		listings = append(listings, listing)
	}

	if opts.JSON {
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return zerr.Wrap(err, "failed to encode listing")
		}
		fmt.Fprintln(a.stdout, string(data))
		return nil
	}

	for _, listing := range listings {
		fmt.Fprintf(a.stdout, "%s: %d declaration(s)\n", listing.Manifest, len(listing.Declarations))
		for _, decl := range listing.Declarations {
			fmt.Fprintf(a.stdout, "  %s %s\n", decl.Name, decl.Constraint)
		}
	}

	return nil
}

// Diff compares two manifests as declaration sets and prints what was
// added, removed and changed. Line order never matters. Returns
// ErrManifestsDiffer when the sets are not equal.
func (a *App) Diff(ctx context.Context, beforePath, afterPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	before, _, err := a.loader.Load(beforePath)
	if err != nil {
		return zerr.With(err, "manifest", beforePath)
	}
	after, _, err := a.loader.Load(afterPath)
	if err != nil {
		return zerr.With(err, "manifest", afterPath)
	}

	diff := domain.DiffManifests(before, after)
	if diff.Empty() {
		a.logger.Info("manifests declare the same set")
		return nil
	}

	out := output.New(a.stdout)
	for _, decl := range diff.Added {
		fmt.Fprintln(a.stdout, out.String(style.Plus+" "+decl.String()).Foreground(termenv.ANSIGreen))
	}
	for _, decl := range diff.Removed {
		fmt.Fprintln(a.stdout, out.String(style.Minus+" "+decl.String()).Foreground(termenv.ANSIRed))
	}
	for _, change := range diff.Changed {
		line := fmt.Sprintf("%s %s %s -> %s", style.Tilde, change.Name, change.From, change.To)
		fmt.Fprintln(a.stdout, out.String(line).Foreground(termenv.ANSIYellow))
	}

	a.logger.Info(fmt.Sprintf("%d added, %d removed, %d changed",
		len(diff.Added), len(diff.Removed), len(diff.Changed)))

	return domain.ErrManifestsDiffer
}

// SnapshotOptions configuration for the Snapshot method.
type SnapshotOptions struct {
	Manifests []string
}

// Snapshot records the current declaration set of each manifest so later
// checks can report drift. A manifest with grammar errors is refused:
// a snapshot of a broken baseline would make every future drift report
// meaningless.
func (a *App) Snapshot(ctx context.Context, opts SnapshotOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	manifests, err := a.resolveManifests(project, opts.Manifests)
	if err != nil {
		return err
	}

	for _, path := range manifests {
		if err := ctx.Err(); err != nil {
			return err
		}

		m, findings, err := a.loader.Load(path)
		if err != nil {
			return zerr.With(err, "manifest", path)
		}
		for _, f := range findings {
			a.logger.Warn(f.String())
		}
		if findings.HasErrors() {
			return zerr.With(domain.ErrCheckFailed, "manifest", path)
		}

		digest, err := a.hasher.Digest(m)
		if err != nil {
			return zerr.With(err, "manifest", path)
		}

		snap := domain.SnapshotOf(m, digest, time.Now())
		if err := a.store.Put(project.Root, snap); err != nil {
			return zerr.With(err, "manifest", path)
		}

		a.logger.Info(fmt.Sprintf("snapshot taken for %s (%d declarations)", path, len(snap.Declarations)))
	}

	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Manifests limits the clean to the named manifests' baselines.
	// Empty removes the whole .pinch directory.
	Manifests []string
}

// Clean removes recorded baselines: the named manifests' snapshots, or
// the entire .pinch directory when no manifest is given.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if len(opts.Manifests) == 0 {
		if err := a.store.Clean(project.Root); err != nil {
			return err
		}
		a.logger.Info("removed " + filepath.Join(project.Root, domain.PinchDirName))
		return nil
	}

	manifests, err := a.resolveManifests(project, opts.Manifests)
	if err != nil {
		return err
	}
	for _, path := range manifests {
		if err := a.store.Delete(project.Root, path); err != nil {
			return zerr.With(err, "manifest", path)
		}
		a.logger.Info("removed snapshot for " + path)
	}
	return nil
}
