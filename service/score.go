package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type problemConfig struct {
	Subtasks []subtaskConfig `yaml:"subtasks"`
}

type subtaskConfig struct {
	Score *float64 `yaml:"score"`
}

// ProblemScore 计算题目总分, 即 config 中所有 subtasks[].score 之和.
// 缺少 score 的子任务按 0 分计算, 没有 subtasks 或 config 不是 mapping 时总分为 0.
// config 只能包含一个 YAML 文档.
func ProblemScore(config string) (float64, error) {
	dec := yaml.NewDecoder(strings.NewReader(config))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		// 空文档
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("expected a single document in the stream")
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return 0, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return 0, nil
	}

	var cfg problemConfig
	if err := doc.Decode(&cfg); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var total float64
	for _, st := range cfg.Subtasks {
		if st.Score != nil {
			total += *st.Score
		}
	}
	return total, nil
}
