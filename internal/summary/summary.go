package summary

import (
	"fmt"

	"github.com/akravets/bureauscan/internal/model"
)

// Summarizer aggregates findings into the statistics report consumers use
type Summarizer struct{}

// New creates a summarizer
func New() *Summarizer {
	return &Summarizer{}
}

// Summarize computes severity counts, the claim count, the 0-100 impact
// index, and diagnostic signals with transparent data. It never mutates
// the findings.
func (s *Summarizer) Summarize(findings []model.Finding, mode model.ExtractionMode, client model.Client) model.Summary {
	sum := model.Summary{TotalFindings: len(findings)}

	impactTotal := 0
	bureauCounts := make(map[model.Bureau]int)
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityCritical:
			sum.Critical++
		case model.SeverityHigh:
			sum.High++
		case model.SeverityMedium:
			sum.Medium++
		case model.SeverityLow:
			sum.Low++
		}
		if f.ClaimIndicator {
			sum.ClaimCount++
		}
		impactTotal += f.ImpactScore
		for _, b := range f.BureausAffected {
			bureauCounts[b]++
		}
	}

	sum.ImpactIndex = impactIndex(impactTotal, len(findings))

	sum.Signals = append(sum.Signals, severitySignal(sum))
	if sum.ClaimCount > 0 {
		sum.Signals = append(sum.Signals, claimSignal(sum.ClaimCount))
	}
	sum.Signals = append(sum.Signals, bureauSignal(bureauCounts))
	if mode == model.ModeFallback {
		sum.Signals = append(sum.Signals, fallbackSignal())
	}
	if client.FlaggedForFraud {
		sum.Signals = append(sum.Signals, fraudSignal())
	}

	return sum
}

// impactIndex scales the mean impact score onto 0-100
func impactIndex(impactTotal, count int) int {
	if count == 0 {
		return 0
	}
	index := impactTotal * 10 / count
	if index > 100 {
		index = 100
	}
	return index
}

func severitySignal(sum model.Summary) model.Signal {
	severity := model.SeverityLow
	if sum.High > 0 || sum.Critical > 0 {
		severity = model.SeverityHigh
	} else if sum.Medium > 0 {
		severity = model.SeverityMedium
	}
	return model.Signal{
		Type:     model.SignalSeverityDistribution,
		Severity: severity,
		Description: fmt.Sprintf("%d findings: %d critical, %d high, %d medium, %d low",
			sum.TotalFindings, sum.Critical, sum.High, sum.Medium, sum.Low),
		Data: map[string]interface{}{
			"critical": sum.Critical,
			"high":     sum.High,
			"medium":   sum.Medium,
			"low":      sum.Low,
		},
	}
}

func claimSignal(claims int) model.Signal {
	return model.Signal{
		Type:        model.SignalClaimEscalation,
		Severity:    model.SeverityHigh,
		Description: fmt.Sprintf("%d findings flagged as potential violations warranting escalation", claims),
		Data: map[string]interface{}{
			"claim_count": claims,
		},
	}
}

func bureauSignal(counts map[model.Bureau]int) model.Signal {
	data := make(map[string]interface{}, len(counts))
	for _, b := range model.BureauOrder {
		data[string(b)] = counts[b]
	}
	return model.Signal{
		Type:     model.SignalBureauCoverage,
		Severity: model.SeverityLow,
		Description: fmt.Sprintf("Findings by bureau: TransUnion %d, Experian %d, Equifax %d",
			counts[model.BureauTransUnion], counts[model.BureauExperian], counts[model.BureauEquifax]),
		Data: data,
	}
}

func fallbackSignal() model.Signal {
	return model.Signal{
		Type:        model.SignalExtractionConfidence,
		Severity:    model.SeverityCritical,
		Description: "Structured extraction found no accounts; records were synthesized by the low-confidence fallback and should not be treated as verified",
		Data: map[string]interface{}{
			"mode": string(model.ModeFallback),
		},
	}
}

func fraudSignal() model.Signal {
	return model.Signal{
		Type:        model.SignalFraudFlag,
		Severity:    model.SeverityHigh,
		Description: "The report text contains a fraud marker; the consumer may already have an active fraud alert",
	}
}
