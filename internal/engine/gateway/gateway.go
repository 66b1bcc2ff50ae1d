// Package gateway implements the validation gateway: the decision function
// that turns a package's trust attributes into an admit/block verdict.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports"
)

const (
	// TrustThreshold is the fixed policy threshold for trust scores.
	TrustThreshold = 0.5

	// AdvisoryOffline is the sentinel advisory text substituted when the
	// advisory service cannot be reached.
	AdvisoryOffline = "advisory service offline, using local validation"

	// AdvisoryUnavailable is the sentinel response for injection checks
	// when the advisory service cannot be reached.
	AdvisoryUnavailable = "advisory service unavailable"

	// validateTokens and injectionTokens cap the advisory response length.
	validateTokens  = 100
	injectionTokens = 50

	advisoryTimeout = 5 * time.Second
)

// Gateway produces validation verdicts. The deterministic checks require no
// I/O; the advisory augmentation is the only call that may block and it is
// bounded by its own timeout.
type Gateway struct {
	advisory ports.AdvisoryClient
}

// New creates a Gateway consulting the given advisory client.
func New(advisory ports.AdvisoryClient) *Gateway {
	return &Gateway{advisory: advisory}
}

// Validate evaluates the package against the deterministic policy, then
// augments the verdict with a best-effort advisory opinion. The three checks
// run in fixed order and none short-circuits the others; advisory outcome
// never alters Valid or Warnings.
func (g *Gateway) Validate(ctx context.Context, pkg *domain.Package, action string) domain.Verdict {
	v := domain.Verdict{
		TrustOK: pkg.TrustScore >= TrustThreshold,
		JISOK:   pkg.JISCompliant,
		SNAFTOK: pkg.SNAFTVerified,
	}

	if !v.TrustOK {
		v.Warnings = append(v.Warnings, fmt.Sprintf("Trust score %v below minimum 0.5", pkg.TrustScore))
	}
	if !v.JISOK {
		v.Warnings = append(v.Warnings, "Package is not JIS compliant")
	}
	if !v.SNAFTOK {
		v.Warnings = append(v.Warnings, "Package is not SNAFT verified")
	}

	v.Valid = v.TrustOK && v.JISOK && v.SNAFTOK

	actx, cancel := context.WithTimeout(ctx, advisoryTimeout)
	defer cancel()

	prompt := fmt.Sprintf("[CHECK] %s %s", action, pkg.Name)
	if text, ok := g.advisory.Ask(actx, prompt, validateTokens); ok {
		v.Advisory = text
	} else {
		v.Advisory = AdvisoryOffline
	}

	return v
}

// CheckInjection sends arbitrary text to the advisory endpoint for an
// opinion, under its own bounded timeout.
func (g *Gateway) CheckInjection(ctx context.Context, text string) domain.InjectionCheck {
	actx, cancel := context.WithTimeout(ctx, advisoryTimeout)
	defer cancel()

	response, ok := g.advisory.Ask(actx, "[CHECK] "+text, injectionTokens)
	if !ok {
		return domain.InjectionCheck{Checked: false, Response: AdvisoryUnavailable}
	}
	return domain.InjectionCheck{Checked: true, Response: response}
}
