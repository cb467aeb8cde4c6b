package config

// Sanityfile represents the structure of the sanity.yaml configuration file.
type Sanityfile struct {
	Version      string            `yaml:"version"`
	EstimateSize bool              `yaml:"estimateSize"`
	Expected     []ExpectedRuleDTO `yaml:"expected"`
}

// ExpectedRuleDTO describes a finding that is known and accepted.
type ExpectedRuleDTO struct {
	Type        string `yaml:"type"`
	Message     string `yaml:"message"`
	Fingerprint string `yaml:"fingerprint"`
	Reason      string `yaml:"reason"`
}
