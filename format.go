package arena

import (
	"fmt"
	"strings"
)

// String prints the occupied slots as index: value pairs, for example
// "SlotArena{0: James, 2: Jack}".
func (a *SlotArena[T]) String() string {
	var b strings.Builder
	b.WriteString("SlotArena{")
	sep := ""
	for r, v := range a.All() {
		fmt.Fprintf(&b, "%s%d: %v", sep, r.index, v)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}
