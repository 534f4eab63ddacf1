// Package export generates deliverable artifacts from linting outputs: a
// clean-copy document, a flags checklist, and the canned planning documents
// (RTI outline, accommodation SOP, partner map, funding plan, decision log).
//
// Export never recomputes flags or rewrites; it renders what the engine
// already produced. File names carry the run timestamp, writes are atomic.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/yaklabco/wpslint/pkg/fsutil"
)

// Kind identifies the type of an exported artifact.
type Kind string

const (
	KindCleanMarkdown Kind = "clean-markdown"
	KindCleanDocx     Kind = "clean-docx"
	KindChecklist     Kind = "checklist"
	KindRTIOutline    Kind = "rti-outline"
	KindSOP           Kind = "accommodation-sop"
	KindPartnerMap    Kind = "partner-map"
	KindFundingPlan   Kind = "funding-plan"
	KindDecisionLog   Kind = "decision-log"
)

// Artifact describes one written export file.
type Artifact struct {
	// ID uniquely identifies this artifact instance.
	ID string

	// Kind is the artifact type.
	Kind Kind

	// Path is where the file was written.
	Path string
}

// Exporter writes artifacts into a target directory.
type Exporter struct {
	dir string

	// now is swappable so tests get stable file names.
	now func() time.Time
}

// New returns an Exporter writing into dir. The directory is created on the
// first write if it does not exist.
func New(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, now: time.Now}
}

// stamp matches the original tool's export naming, minute resolution.
func (e *Exporter) stamp() string {
	return e.now().Format("20060102_1504")
}

func (e *Exporter) write(ctx context.Context, kind Kind, name string, content []byte) (Artifact, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := fsutil.WriteAtomic(ctx, path, content, 0); err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", name, err)
	}

	return Artifact{
		ID:   uuid.NewString(),
		Kind: kind,
		Path: path,
	}, nil
}

// CleanMarkdown exports the rewritten document as Markdown under a title
// heading.
func (e *Exporter) CleanMarkdown(ctx context.Context, title, body string) (Artifact, error) {
	content := fmt.Sprintf("# %s\n\n%s\n", title, body)
	name := fmt.Sprintf("WPS_Clean_%s.md", e.stamp())
	return e.write(ctx, KindCleanMarkdown, name, []byte(content))
}

// CleanDocx exports the rewritten document as a minimal Word file.
func (e *Exporter) CleanDocx(ctx context.Context, title, body string) (Artifact, error) {
	content, err := buildDocx(title, body)
	if err != nil {
		return Artifact{}, fmt.Errorf("build docx: %w", err)
	}
	name := fmt.Sprintf("WPS_Clean_%s.docx", e.stamp())
	return e.write(ctx, KindCleanDocx, name, content)
}

// Canned planning artifacts. Content mirrors the derived documents the
// original assistant offered for download.
const (
	rtiOutlineBody = `# RTI Outline

- Modules with UDL hooks
- Accessible materials
- Performance-based assessments
`

	sopBody = `# Accommodation SOP

- Acknowledge in 2 business days
- Meet in 5-10 days
- Privacy-respecting workflow
`

	partnerMapBody = `# Partner Map

- DOR/VR
- AJCs
- CILs
- Unions/LM
- CBOs
- Education partners
`

	fundingPlanBody = `# Funding Plan

- WIOA I/III/IV
- Perkins V
- SNAP E&T
- VR
- Employer match
- Philanthropy
`

	decisionLogBody = `# Decision Log

| Date | Decision | Rationale | Source | Owner |
|---|---|---|---|---|
`
)

// RTIOutline exports the related-technical-instruction outline.
func (e *Exporter) RTIOutline(ctx context.Context) (Artifact, error) {
	name := fmt.Sprintf("RTI_Outline_%s.md", e.stamp())
	return e.write(ctx, KindRTIOutline, name, []byte(rtiOutlineBody))
}

// AccommodationSOP exports the accommodation standard operating procedure.
func (e *Exporter) AccommodationSOP(ctx context.Context) (Artifact, error) {
	name := fmt.Sprintf("Accommodation_SOP_%s.md", e.stamp())
	return e.write(ctx, KindSOP, name, []byte(sopBody))
}

// PartnerMap exports the partner map.
func (e *Exporter) PartnerMap(ctx context.Context) (Artifact, error) {
	name := fmt.Sprintf("Partner_Map_%s.md", e.stamp())
	return e.write(ctx, KindPartnerMap, name, []byte(partnerMapBody))
}

// FundingPlan exports the braided funding plan.
func (e *Exporter) FundingPlan(ctx context.Context) (Artifact, error) {
	name := fmt.Sprintf("Funding_Plan_%s.md", e.stamp())
	return e.write(ctx, KindFundingPlan, name, []byte(fundingPlanBody))
}

// DecisionLog exports the empty decision log table.
func (e *Exporter) DecisionLog(ctx context.Context) (Artifact, error) {
	name := fmt.Sprintf("Decision_Log_%s.md", e.stamp())
	return e.write(ctx, KindDecisionLog, name, []byte(decisionLogBody))
}
