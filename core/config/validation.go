// File: validation.go
// Title: Configuration Validation
// Description: Validates configuration values against typed rules: required
//              keys, value types, integer bounds and enumerations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation of validation
// - 2026-10-12 v0.2.0: Replaced regex patterns with OneOf enumerations

package config

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/wstring/core/error"
)

// ValidationRule defines validation criteria for one configuration key
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // "string", "int" or "bool"
	Min      *int     // Minimum value for ints
	Max      *int     // Maximum value for ints
	OneOf    []string // Allowed values for strings, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a coded error, or nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: " + strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", len(r.Errors))
}

// IntPtr is a helper for the Min and Max rule fields
func IntPtr(v int) *int {
	return &v
}

// Validate checks the configuration against rules.
// Keys are checked in sorted order so error lists are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		c.mu.RLock()
		raw := c.getValue(key)
		c.mu.RUnlock()
		if _, ok := toInt(raw); !ok && raw != nil {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, raw)
		}
		n := c.GetInt(key)
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' must be >= %d, got %d", key, *rule.Min, n)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("field '%s' must be <= %d, got %d", key, *rule.Max, n)
		}
	case "bool":
		c.mu.RLock()
		raw := c.getValue(key)
		c.mu.RUnlock()
		if _, ok := raw.(bool); !ok && raw != nil {
			if _, isString := raw.(string); !isString {
				return fmt.Errorf("field '%s' must be a boolean, got %v", key, raw)
			}
		}
	case "string", "":
		if len(rule.OneOf) > 0 {
			value := strings.ToLower(c.GetString(key))
			for _, allowed := range rule.OneOf {
				if value == strings.ToLower(allowed) {
					return nil
				}
			}
			return fmt.Errorf("field '%s' must be one of [%s], got '%s'", key, strings.Join(rule.OneOf, ", "), value)
		}
	default:
		return fmt.Errorf("field '%s' has unknown rule type '%s'", key, rule.Type)
	}
	return nil
}
