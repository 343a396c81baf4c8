// Package ui provides the lobby and room view components of the anonchat
// terminal client.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// InputHeight is the number of lines for the message input
	InputHeight = 1

	// InputBorderHeight is the border size around the input
	InputBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (input + borders)
	InputTotalHeight = InputHeight + InputBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// InputCharLimit is the character limit for the lobby text inputs
	InputCharLimit = 256
)
