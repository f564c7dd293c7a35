// File: mutate.go
// Title: In-Place Mutation
// Description: Character access, removal, trimming, padding and ASCII case
//              mapping. None of these shrink or reallocate the buffer,
//              except padding which may need to grow it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation
// - 2026-10-13 v0.1.1: Substring swaps reversed bounds

package wstring

// DefaultTrimSet is the byte set Trim removes when none is given
const DefaultTrimSet = " \t\n\v\f\r"

// CharAt returns the byte at index, or 0 when index is out of range
func (s *String) CharAt(index int) byte {
	if index < 0 || index >= s.Len() {
		return 0
	}
	return s.buffer()[index]
}

// SetCharAt overwrites the byte at index; out of range indexes are ignored
func (s *String) SetCharAt(index int, c byte) {
	if index < 0 || index >= s.Len() {
		return
	}
	s.buffer()[index] = c
}

// GetBytes copies content starting at index into dst and terminates it with
// a 0 byte. It returns the number of content bytes copied.
func (s *String) GetBytes(dst []byte, index ...int) int {
	if len(dst) == 0 {
		return 0
	}
	from := 0
	if len(index) > 0 {
		from = index[0]
	}
	n := s.Len()
	if from < 0 || from >= n {
		dst[0] = 0
		return 0
	}
	c := copy(dst[:len(dst)-1], s.buffer()[from:n])
	dst[c] = 0
	return c
}

// Remove deletes count bytes starting at index. Without count everything
// from index to the end is removed. The range is clamped to the content.
func (s *String) Remove(index int, count ...int) {
	n := s.Len()
	if index < 0 || index >= n {
		return
	}
	c := n - index
	if len(count) > 0 && count[0] < c {
		c = count[0]
	}
	if c <= 0 {
		return
	}
	buf := s.buffer()
	copy(buf[index:], buf[index+c:n])
	s.setlen(n - c)
}

// ReplaceByte replaces every occurrence of find with repl
func (s *String) ReplaceByte(find, repl byte) {
	buf := s.Bytes()
	for i, c := range buf {
		if c == find {
			buf[i] = repl
		}
	}
}

// Trim removes leading and trailing bytes found in set (DefaultTrimSet if
// omitted). Set is a plain byte set, not decoded as UTF-8.
func (s *String) Trim(set ...string) {
	cut := DefaultTrimSet
	if len(set) > 0 {
		cut = set[0]
	}
	content := s.Bytes()
	if len(content) == 0 {
		return
	}

	var in [256]bool
	for i := 0; i < len(cut); i++ {
		in[cut[i]] = true
	}
	start, end := 0, len(content)
	for start < end && in[content[start]] {
		start++
	}
	for end > start && in[content[end-1]] {
		end--
	}
	if start == 0 && end == len(content) {
		return
	}
	copy(content, content[start:end])
	s.setlen(end - start)
}

// Pad fills s with c up to |width| bytes, at the start when width is
// negative and at the end otherwise. The default fill is a space. Nothing
// changes when s is already long enough or the buffer cannot grow.
func (s *String) Pad(width int, c ...byte) *String {
	fill := byte(' ')
	if len(c) > 0 {
		fill = c[0]
	}
	left := width < 0
	if left {
		width = -width
	}
	n := s.Len()
	if n >= width || !s.Reserve(width) {
		return s
	}
	buf := s.buffer()
	if left {
		copy(buf[width-n:], buf[:n])
		fillBytes(buf[:width-n], fill)
	} else {
		fillBytes(buf[n:width], fill)
	}
	s.setlen(width)
	return s
}

// PadLeft inserts fill bytes at the start until s is minWidth long
func (s *String) PadLeft(minWidth int, c ...byte) *String {
	return s.Pad(-minWidth, c...)
}

// PadRight appends fill bytes until s is minWidth long
func (s *String) PadRight(minWidth int, c ...byte) *String {
	return s.Pad(minWidth, c...)
}

func fillBytes(b []byte, c byte) {
	for i := range b {
		b[i] = c
	}
}

// ToLowerCase maps ASCII upper case letters to lower case
func (s *String) ToLowerCase() {
	buf := s.Bytes()
	for i, c := range buf {
		if 'A' <= c && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
}

// ToUpperCase maps ASCII lower case letters to upper case
func (s *String) ToUpperCase() {
	buf := s.Bytes()
	for i, c := range buf {
		if 'a' <= c && c <= 'z' {
			buf[i] = c - ('a' - 'A')
		}
	}
}

// Substring returns a copy of the bytes in [from, to). Without to the copy
// runs to the end. Reversed bounds are swapped and both are clamped to the
// content. The result is null when s is null or the copy cannot be made.
func (s *String) Substring(from int, to ...int) *String {
	out := &String{}
	if s.IsNull() {
		return out
	}
	n := s.Len()
	end := n
	if len(to) > 0 {
		end = to[0]
	}
	if from > end {
		from, end = end, from
	}
	from = min(max(from, 0), n)
	end = min(max(end, 0), n)
	out.SetBytes(s.buffer()[from:end])
	return out
}
