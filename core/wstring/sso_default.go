//go:build !wstring_sso32

package wstring

// SSOCapacity is the number of content bytes stored inline
const SSOCapacity = 14
