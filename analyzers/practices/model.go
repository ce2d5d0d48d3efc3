package practices

import (
	"fmt"
	"strings"
)

// ModelKind is the category of a model identifier.
type ModelKind int

const (
	// ModelNone means no model was selected.
	ModelNone ModelKind = iota
	// ModelCustom is a user-trained model, named with a "custom-" prefix.
	ModelCustom
	// ModelLocal is a model served on the local machine.
	ModelLocal
	// ModelHosted is any other, remotely hosted model.
	ModelHosted
)

const customPrefix = "custom-"

func (k ModelKind) String() string {
	switch k {
	case ModelNone:
		return "none"
	case ModelCustom:
		return "custom"
	case ModelLocal:
		return "local"
	case ModelHosted:
		return "hosted"
	}
	return fmt.Sprintf("ModelKind(%d)", int(k))
}

// Classify returns the kind of a model identifier.
func Classify(model string) ModelKind {
	model = strings.TrimSpace(model)
	lower := strings.ToLower(model)

	switch {
	case model == "":
		return ModelNone
	case strings.HasPrefix(lower, customPrefix):
		return ModelCustom
	case lower == "local" || lower == "unified" || strings.HasPrefix(lower, "ollama"):
		return ModelLocal
	default:
		return ModelHosted
	}
}

// Recommend returns the advisory text for a model identifier.
func Recommend(model string) string {
	model = strings.TrimSpace(model)

	switch Classify(model) {
	case ModelCustom:
		return fmt.Sprintf("Using provided custom model: %s", model[len(customPrefix):])
	case ModelLocal:
		return fmt.Sprintf("Using local model: %s. Analysis stays on this machine.", model)
	case ModelHosted:
		return fmt.Sprintf("Using selected model: %s", model)
	default:
		return "No model selected. For in-depth code embeddings and custom checks, " +
			"consider using a trained CodeBERT or a local model (custom-codebert)."
	}
}
