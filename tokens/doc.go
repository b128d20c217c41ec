// Package tokens implements the comma-separated token grammar shared by the
// raw edit text and the committed token list.
//
// Parse splits on ',' and trims each piece, dropping empty pieces while
// keeping order and duplicates. Join renders a token list back into the
// canonical ", "-separated form, so Parse(Join(ts)) == ts for any list that
// Parse produced.
package tokens
