package gen_test

import (
	"fmt"

	"github.com/foldkit/boxpleat/foldability"
	"github.com/foldkit/boxpleat/gen"
)

// Build a bordered sheet with a waterbomb cell and check it folds flat.
func ExampleBuild() {
	pt, err := gen.Build(4, gen.Frame(), gen.Waterbomb())
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	rep, err := foldability.Validate(pt)
	if err != nil {
		fmt.Println("validate:", err)
		return
	}

	fmt.Println("creases:", pt.CreaseCount())
	fmt.Println(rep.Summary())
	// Output:
	// creases: 22
	// flat-foldable: all interior vertices pass
}
