// Package config provides configuration loading for wstring tools.
//
// Package: config
// Title: Configuration Management
// Description: TOML and YAML configuration with dot-path access, defaults,
//              environment overrides and rule-based validation. The
//              allocator settings of the wstr command are read through it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Validation rules, Keys and Set
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("configs/wstr.toml", config.LoadOptions{
//		Format:    config.FormatAuto,
//		EnvPrefix: config.DefaultEnvPrefix,
//	})
//	if err != nil {
//		return err
//	}
//	budget := cfg.GetInt("alloc.budget", 4096) // WSTR_ALLOC_BUDGET overrides
//
// Example TOML:
//
//	[alloc]
//	kind = "budget"
//	budget = 8192
//	granularity = 16
//
//	[log]
//	level = "debug"
//	format = "json"
package config
