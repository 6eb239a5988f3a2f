// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"io"

	"github.com/feimaomiao/proxysheet/pkg/types"
)

// minNameColumn is the minimum width of the filename column.
const minNameColumn = 18

// WriteReport prints the two-column rejection table. Nothing is written
// when there are no rejections.
func WriteReport(w io.Writer, rejected []types.Rejection) {
	if len(rejected) == 0 {
		return
	}

	width := minNameColumn
	for _, r := range rejected {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}

	fmt.Fprintf(w, "%-*s|Reason\n", width, "Excluded file name")
	for _, r := range rejected {
		fmt.Fprintf(w, "%-*s|%s\n", width, r.Name, r.Reason)
	}
}
