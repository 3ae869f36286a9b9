// Package checker runs the rule pipeline over a set of manifests.
package checker

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Checker validates manifests against the structural rules and the
// project policy. Manifests are checked concurrently, one span each;
// findings stream to the renderer through the span writer.
type Checker struct {
	loader ports.ManifestLoader
	hasher ports.Hasher
	store  ports.SnapshotStore
	tracer ports.Tracer
	logger ports.Logger
}

// NewChecker creates a new Checker with the given dependencies.
func NewChecker(
	loader ports.ManifestLoader,
	hasher ports.Hasher,
	store ports.SnapshotStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Checker {
	return &Checker{
		loader: loader,
		hasher: hasher,
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

// Options configures a check run.
type Options struct {
	// NoDrift disables the drift rule regardless of the policy.
	NoDrift bool
}

// Run checks every manifest and returns the combined findings, grouped
// in argument order with line order inside each manifest. The returned
// error is ErrCheckFailed when any finding has error severity; I/O
// failures surface as their own errors.
func (c *Checker) Run(
	ctx context.Context,
	project *domain.Project,
	manifests []string,
	opts Options,
) (domain.Findings, error) {
	c.tracer.EmitPlan(ctx, manifests)

	results := make([]domain.Findings, len(manifests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range manifests {
		g.Go(func() error {
			findings, err := c.checkManifest(ctx, project, path, opts)
			if err != nil {
				return err
			}
			results[i] = findings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all domain.Findings
	for _, findings := range results {
		all = append(all, findings...)
	}

	if all.HasErrors() {
		return all, domain.ErrCheckFailed
	}
	return all, nil
}

// checkManifest runs the full rule pipeline for one manifest inside its
// own span. Rule findings are not errors: the returned error is reserved
// for unreadable files.
func (c *Checker) checkManifest(
	ctx context.Context,
	project *domain.Project,
	path string,
	opts Options,
) (domain.Findings, error) {
	_, span := c.tracer.Start(ctx, path)
	defer span.End()

	manifest, findings, err := c.loader.Load(path)
	if err != nil {
		if errors.Is(err, domain.ErrNotUTF8) {
			// Encoding defects end this manifest's pipeline: no line
			// structure exists to run the other rules on.
			f := domain.Finding{
				Rule:     domain.RuleEncoding,
				Severity: domain.SeverityError,
				Manifest: path,
				Message:  domain.ErrNotUTF8.Error(),
			}
			emit(span, f)
			span.RecordError(err)
			return domain.Findings{f}, nil
		}
		span.RecordError(err)
		return nil, zerr.With(err, "manifest", path)
	}

	for _, f := range findings {
		emit(span, f)
	}

	findings = append(findings, c.duplicateRule(span, manifest)...)
	findings = append(findings, c.policyRules(span, project.Policy, manifest)...)
	if !opts.NoDrift && project.Policy.Drift != domain.DriftOff {
		findings = append(findings, c.driftRule(span, project, manifest)...)
	}

	span.SetAttribute("pinch.declarations", manifest.DeclarationCount())
	span.SetAttribute("pinch.findings", len(findings))
	if findings.HasErrors() {
		span.RecordError(domain.ErrCheckFailed)
	}

	return findings, nil
}

// duplicateRule reports every declaration whose canonical name already
// appeared. The finding lands on the repeated line and names the first,
// so editors jump to the line that should be removed.
func (c *Checker) duplicateRule(span ports.Span, m *domain.Manifest) domain.Findings {
	var findings domain.Findings

	firstSeen := make(map[string]int)
	for _, ln := range m.Lines {
		if ln.Decl == nil {
			continue
		}
		canonical := ln.Decl.Canonical()
		if first, ok := firstSeen[canonical]; ok {
			f := domain.Finding{
				Rule:     domain.RuleDuplicate,
				Severity: domain.SeverityError,
				Manifest: m.Path,
				Line:     ln.Number,
				Message:  fmt.Sprintf("package %q already declared on line %d", canonical, first),
			}
			emit(span, f)
			findings = append(findings, f)
			continue
		}
		firstSeen[canonical] = ln.Number
	}

	return findings
}

// policyRules applies the operator, forbidden and required rules.
func (c *Checker) policyRules(span ports.Span, policy domain.Policy, m *domain.Manifest) domain.Findings {
	var findings domain.Findings

	declared := make(map[string]bool, m.DeclarationCount())
	for _, ln := range m.Lines {
		if ln.Decl == nil {
			continue
		}
		decl := ln.Decl
		declared[decl.Canonical()] = true

		if !policy.OperatorAllowed(decl.Constraint.Op) {
			f := domain.Finding{
				Rule:     domain.RuleOperator,
				Severity: domain.SeverityError,
				Manifest: m.Path,
				Line:     ln.Number,
				Message:  fmt.Sprintf("operator %q is not allowed by the policy", decl.Constraint.Op),
			}
			emit(span, f)
			findings = append(findings, f)
		}

		if policy.Forbidden(decl.Canonical()) {
			f := domain.Finding{
				Rule:     domain.RuleForbidden,
				Severity: domain.SeverityError,
				Manifest: m.Path,
				Line:     ln.Number,
				Message:  fmt.Sprintf("package %q is forbidden by the policy", decl.Canonical()),
			}
			emit(span, f)
			findings = append(findings, f)
		}
	}

	for _, name := range policy.Require {
		if !declared[name.String()] {
			f := domain.Finding{
				Rule:     domain.RuleRequired,
				Severity: domain.SeverityError,
				Manifest: m.Path,
				Message:  fmt.Sprintf("required package %q is not declared", name.String()),
			}
			emit(span, f)
			findings = append(findings, f)
		}
	}

	return findings
}

// driftRule compares the manifest's digest to the recorded snapshot. No
// snapshot means no baseline, which is not drift. An unreadable store
// degrades to a warning log so a corrupt cache cannot fail CI runs.
func (c *Checker) driftRule(span ports.Span, project *domain.Project, m *domain.Manifest) domain.Findings {
	snap, err := c.store.Get(project.Root, m.Path)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("skipping drift rule for %s: %v", m.Path, err))
		return nil
	}
	if snap == nil {
		return nil
	}

	digest, err := c.hasher.Digest(m)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("skipping drift rule for %s: %v", m.Path, err))
		return nil
	}

	if digest == snap.Digest {
		return nil
	}

	diff := domain.DiffManifests(snapshotManifest(snap), m)
	f := domain.Finding{
		Rule:     domain.RuleDrift,
		Severity: project.Policy.Drift.Severity(),
		Manifest: m.Path,
		Message:  fmt.Sprintf("declarations drifted from snapshot taken %s (%s)", snap.TakenAt.Format("2006-01-02 15:04"), summarizeDiff(diff)),
	}
	emit(span, f)
	return domain.Findings{f}
}

// snapshotManifest rebuilds a minimal manifest from the recorded pins so
// drift messages can name what changed.
func snapshotManifest(snap *domain.Snapshot) *domain.Manifest {
	m := &domain.Manifest{Path: snap.Path}
	for i, pin := range snap.Declarations {
		decl, err := domain.ParseDeclaration(pin.Name + pin.Constraint)
		if err != nil {
			continue
		}
		m.Lines = append(m.Lines, domain.Line{
			Number: i + 1,
			Kind:   domain.LineDeclaration,
			Raw:    pin.Name + pin.Constraint,
			Decl:   &decl,
		})
	}
	return m
}

func summarizeDiff(diff domain.ManifestDiff) string {
	return fmt.Sprintf("%d added, %d removed, %d changed",
		len(diff.Added), len(diff.Removed), len(diff.Changed))
}

// emit writes the finding to the span so renderers see it as it happens.
func emit(span ports.Span, f domain.Finding) {
	_, _ = span.Write([]byte(f.String() + "\n"))
}
