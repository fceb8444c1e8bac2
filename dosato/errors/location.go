package errors

type Location struct {
	Line   uint `json:"line"`
	Column uint `json:"column"`
	Index  uint `json:"index"`
}

func (self *Location) Advance(newline bool) {
	self.Index += 1
	if newline {
		self.Column = 1
		self.Line += 1
	} else {
		self.Column += 1
	}
}

func (self Location) Until(end Location, filename string) Span {
	return Span{
		Start:    self,
		End:      end,
		Filename: filename,
	}
}

// LocationFromOffset converts a rune offset into the 1-based line and column
// it refers to. Offsets past the end of the source clamp to the last position.
func LocationFromOffset(source string, offset uint) Location {
	location := Location{Line: 1, Column: 1, Index: 0}
	for _, char := range source {
		if location.Index >= offset {
			break
		}
		location.Advance(char == '\n')
	}
	return location
}
