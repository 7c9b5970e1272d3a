// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package layout plans the physical column layout of an export block.

A single_choice question maps to one column labeled with the question
text. A multi_select question maps to one column per option, labeled with
the option texts, and its columns stay contiguous so the header cell can
merge across them. Plan is deterministic for a fixed question list, which
keeps repeated exports byte-comparable.
*/
package layout
