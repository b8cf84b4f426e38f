package trivia

import (
	_ "embed"
)

//go:embed defaults/questions.yaml
var defaultQuestionsYAML []byte
