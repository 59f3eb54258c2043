package otm_test

import (
	"fmt"
	"testing/fstest"

	"github.com/jacoelho/otm"
)

func ExampleLoad() {
	doc := `
library: {name: Shop, namespace: "urn:example:shop", prefix: shop}
business_objects:
  - name: Product
    aliases: [Item]
    summary:
      attributes:
        - {name: sku, type: xsd:string}
`
	fsys := fstest.MapFS{
		"shop.yaml": &fstest.MapFile{Data: []byte(doc)},
	}

	m, err := otm.Load(fsys, "shop.yaml")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	v, err := m.View("shop:Product", otm.NewViewOptions())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, f := range v.Facets {
		fmt.Println(f.Name, f.Aliases)
	}
	// Output:
	// Product_ID [Item_ID]
	// Product_Summary [Item_Summary]
	// Product_Detail [Item_Detail]
}
