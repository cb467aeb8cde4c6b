package domain

// Config holds the settings of a sanity check run.
type Config struct {
	// EstimateSize makes the checker estimate the RAM of every entry before analysis.
	EstimateSize bool
	// Expected lists findings that are known and accepted.
	Expected []ExpectedRule
}

// ExpectedRule matches findings that should be reported as EXPECTED.
// A rule matches by fingerprint when one is set, otherwise by type and message.
// A zero Type matches any type.
type ExpectedRule struct {
	Type        InsanityType
	Message     string
	Fingerprint string
	Reason      string
}

// Matches reports whether the rule applies to ins.
func (r ExpectedRule) Matches(ins Insanity) bool {
	if r.Fingerprint != "" {
		return r.Fingerprint == ins.Fingerprint()
	}
	if r.Message == "" {
		return false
	}
	if r.Type != 0 && r.Type != ins.Type() {
		return false
	}
	return r.Message == ins.Msg()
}

// Classify splits findings into the ones still to report and the ones matched by an expected rule.
func (c *Config) Classify(findings []Insanity) ([]Insanity, []ExpectedInsanity) {
	var unexpected []Insanity
	var expected []ExpectedInsanity

outer:
	for _, ins := range findings {
		for _, rule := range c.Expected {
			if rule.Matches(ins) {
				expected = append(expected, ins.AsExpected(rule.Reason))
				continue outer
			}
		}
		unexpected = append(unexpected, ins)
	}
	return unexpected, expected
}
