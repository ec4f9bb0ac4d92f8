package detect

import (
	"fmt"
	"regexp"

	"github.com/flowscan-io/flowscan/internal/findings"
	"github.com/flowscan-io/flowscan/internal/graph"
)

// recordIDPattern matches 15/18 character platform record IDs by their
// well-known key prefixes (accounts, contacts, users, custom objects, ...).
var recordIDPattern = regexp.MustCompile(`\b(001|003|005|006|00Q|00U|00G|00e|00D|00k|00T|00P|00I|00O|a[0-9A-Za-z]{2})[a-zA-Z0-9]{12,15}\b`)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"'}]+`)

// DefaultAllowedURLPatterns lists URL shapes that are environment-aware and
// therefore safe to embed: platform API references and platform-owned hosts.
var DefaultAllowedURLPatterns = []string{
	`https?://\{!\$Api\.`,
	`https?://[^/]*\.salesforce\.com`,
	`https?://[^/]*\.force\.com`,
}

// HardcodedIDs reports elements whose literal values embed a record ID.
// Record IDs differ between environments, so a hardcoded one breaks on
// deployment and silently targets the wrong record until then.
func HardcodedIDs(g *graph.Graph) []findings.Finding {
	var out []findings.Finding
	for _, name := range g.Names() {
		el := g.Element(name)
		for _, lit := range el.Literals {
			if recordIDPattern.MatchString(lit) {
				out = append(out, findings.Finding{
					Category: findings.HardcodedID,
					Severity: findings.SeverityHigh,
					Element:  el.Name,
					Detail:   fmt.Sprintf("element %q embeds a record ID literal; use a variable or configuration instead", el.Name),
				})
				break
			}
		}
	}
	return out
}

// HardcodedURLs reports elements whose literal values embed a URL outside
// the allowed patterns. A nil pattern list falls back to the defaults; an
// unparsable pattern is skipped rather than failing the detector.
func HardcodedURLs(g *graph.Graph, allowedPatterns []string) []findings.Finding {
	if allowedPatterns == nil {
		allowedPatterns = DefaultAllowedURLPatterns
	}
	var allowed []*regexp.Regexp
	for _, p := range allowedPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		allowed = append(allowed, re)
	}

	var out []findings.Finding
	for _, name := range g.Names() {
		el := g.Element(name)
		if flagged := firstDisallowedURL(el.Literals, allowed); flagged != "" {
			out = append(out, findings.Finding{
				Category: findings.HardcodedURL,
				Severity: findings.SeverityLow,
				Element:  el.Name,
				Detail:   fmt.Sprintf("element %q embeds the URL %q; move it to configuration for portability", el.Name, flagged),
			})
		}
	}
	return out
}

func firstDisallowedURL(literals []string, allowed []*regexp.Regexp) string {
	for _, lit := range literals {
		for _, url := range urlPattern.FindAllString(lit, -1) {
			ok := false
			for _, re := range allowed {
				if re.MatchString(url) {
					ok = true
					break
				}
			}
			if !ok {
				return url
			}
		}
	}
	return ""
}
