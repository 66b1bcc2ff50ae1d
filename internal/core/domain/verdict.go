package domain

// Verdict is the structured admit/block decision produced by the validation
// gateway for one package. It is computed per call and never persisted.
type Verdict struct {
	// Valid is true iff every deterministic check passed.
	Valid bool

	// TrustOK, JISOK and SNAFTOK record the outcome of the individual
	// deterministic checks, in policy order.
	TrustOK bool
	JISOK   bool
	SNAFTOK bool

	// Advisory is the best-effort opinion from the advisory service, or a
	// sentinel explaining unavailability. It is informational only and
	// never gates Valid.
	Advisory string

	// Warnings holds one human-readable explanation per failed check, in
	// the fixed order trust, compliance, verification.
	Warnings []string
}

// InjectionCheck is the result of sending arbitrary text to the advisory
// service for an opinion.
type InjectionCheck struct {
	// Checked reports whether a response was actually obtained.
	Checked bool

	// Response is the advisory text, or an unavailability sentinel.
	Response string
}
