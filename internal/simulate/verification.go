package simulate

import (
	"context"
	"fmt"
	"log"
)

// expectedClassification maps a subject model to the classification the
// scorer should report for it. The random model has no expectation.
func expectedClassification(subject string) (string, bool) {
	switch subject {
	case "normal":
		return "normal", true
	case "protan":
		return "protan", true
	case "deutan":
		return "deutan", true
	case "tritan":
		return "tritan", true
	default:
		return "", false
	}
}

// verifyResults checks the scored outcomes against the subject model.
func verifyResults(ctx context.Context, config *Config, results []ResultResponse, stats *Stats) error {
	log.Println("🔍 Verifying results...")

	if len(results) == 0 {
		return fmt.Errorf("no results to verify")
	}

	expected, ok := expectedClassification(config.Subject)
	if !ok {
		log.Printf("ℹ️  No expected classification for subject model %q; skipping consistency check", config.Subject)
		displayClassificationBreakdown(stats)
		return nil
	}

	matched := stats.Classifications[expected]
	matchRate := float64(matched) / float64(len(results)) * PercentageMultiplier

	if matched != len(results) {
		log.Printf("⚠️  Classification consistency warning: %d/%d sessions classified as %q (%.1f%%)",
			matched, len(results), expected, matchRate)
	} else {
		log.Printf("✅ All %d sessions classified as %q", len(results), expected)
	}

	displayClassificationBreakdown(stats)

	log.Println("✅ Result verification completed")
	return nil
}

// displayClassificationBreakdown shows the classification and severity counts.
func displayClassificationBreakdown(stats *Stats) {
	log.Println("📊 Classification breakdown:")
	for classification, count := range stats.Classifications {
		log.Printf("   %s: %d", classification, count)
	}
	log.Println("📊 Severity breakdown:")
	for severity, count := range stats.Severities {
		log.Printf("   %s: %d", severity, count)
	}
}
