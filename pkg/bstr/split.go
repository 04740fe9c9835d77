package bstr

// DefaultDelimiter is used by Split when no delimiter is given.
const DefaultDelimiter = " "

// Split cuts s around every occurrence of delim and returns the pieces in
// order, including empty pieces produced by leading, trailing or adjacent
// delimiters. A nil delim means DefaultDelimiter. s is not modified.
//
// Matching is incremental and never backtracks: when a partial match of delim
// breaks, the matched prefix and the breaking byte are both kept as literal
// content and matching restarts at the next byte. With delim "ab", the input
// "aab" is therefore a single piece.
//
// An empty s yields exactly one empty piece. An empty delim never matches and
// yields a single copy of s.
func (s *String) Split(delim *String) []*String {
	if delim == nil {
		delim = FromString(DefaultDelimiter)
	}
	if s.size == 0 {
		return []*String{New()}
	}
	if delim.size == 0 {
		return []*String{s.Clone()}
	}

	var (
		pieces  []*String
		word    = New()
		matched int
		d       = delim.Data()
	)
	for _, c := range s.Data() {
		if c == d[matched] {
			matched++
		} else {
			word.AppendBytes(d[:matched])
			word.PushBack(c)
			matched = 0
		}
		if matched == len(d) {
			pieces = append(pieces, word)
			word = New()
			matched = 0
		}
	}
	word.AppendBytes(d[:matched])
	return append(pieces, word)
}

// Join returns the segments concatenated in order with the content of s
// between each pair. No segments yield an empty String; a single segment is
// returned as a copy with no separator.
func (s *String) Join(segments []*String) *String {
	joined := New()
	if len(segments) == 0 {
		return joined
	}
	total := s.size * (len(segments) - 1)
	for _, seg := range segments {
		total += seg.size
	}
	if total > 0 {
		joined.Reserve(total)
	}
	for _, seg := range segments[:len(segments)-1] {
		joined.Append(seg).Append(s)
	}
	return joined.Append(segments[len(segments)-1])
}
