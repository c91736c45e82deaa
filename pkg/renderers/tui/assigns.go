package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

// PromptAssigns asks the user for a value for every boolean, number or
// string assign, using the current value as the default. Other assigns are
// kept as they are.
func PromptAssigns(ctx context.Context, driver PromptDriver, assigns map[string]any) (map[string]any, error) {
	if driver == nil {
		return nil, ErrNoDriver
	}
	keys := make([]string, 0, len(assigns))
	for key := range assigns {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(assigns))
	for _, key := range keys {
		current := assigns[key]
		switch v := current.(type) {
		case bool:
			answer, err := driver.Confirm(ctx, ConfirmConfig{Message: key, Default: v})
			if err != nil {
				return nil, err
			}
			out[key] = answer
		case float64:
			answer, err := driver.Input(ctx, InputConfig{
				Message: key,
				Default: strconv.FormatFloat(v, 'g', -1, 64),
				Validator: func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("%s must be a number", key)
					}
					return nil
				},
			})
			if err != nil {
				return nil, err
			}
			f, err := strconv.ParseFloat(answer, 64)
			if err != nil {
				return nil, fmt.Errorf("tui: assign %s: %w", key, err)
			}
			out[key] = f
		case string:
			answer, err := driver.Input(ctx, InputConfig{Message: key, Default: v})
			if err != nil {
				return nil, err
			}
			out[key] = answer
		default:
			out[key] = current
		}
	}
	return out, nil
}
