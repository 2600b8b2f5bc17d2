package config

// ModelsPriority returns the models to try, most preferred first.
//
// A non-empty Models list wins and is returned as-is; otherwise a non-empty
// Model yields a single candidate. The two are never merged. An empty result
// means no model is configured and the caller picks its own fallback.
func (c *AIConfig) ModelsPriority() []string {
	switch {
	case len(c.Models) > 0:
		out := make([]string, len(c.Models))
		copy(out, c.Models)
		return out
	case c.Model != "":
		return []string{c.Model}
	default:
		return []string{}
	}
}
