package ports

import "maven-depman/internal/types"

type OutputWriterPort interface {
	WriteEffectiveReport(report types.EffectiveReport) error
}
