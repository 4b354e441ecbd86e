// Package export serializes a user's full state tree to a downloadable
// document.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ExportOutput carries the serialized document and its download filename,
// which embeds today's date.
type ExportOutput struct {
	Filename string
	Data     []byte
}

// ExportStateUseCase renders the state tree as an indented JSON document.
type ExportStateUseCase struct {
	clock adapter.Clock
}

// NewExportStateUseCase creates a new ExportStateUseCase instance.
func NewExportStateUseCase(clock adapter.Clock) *ExportStateUseCase {
	return &ExportStateUseCase{clock: clock}
}

// Execute serializes the tree.
func (uc *ExportStateUseCase) Execute(tree *entity.StateTree) (*ExportOutput, error) {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}

	today := uc.clock.Now().Format("2006-01-02")
	return &ExportOutput{
		Filename: fmt.Sprintf("habit_tracker_%s.json", today),
		Data:     data,
	}, nil
}
