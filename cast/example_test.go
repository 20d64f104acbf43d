package cast_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/theory/csvcast/cast"
	"github.com/theory/csvcast/cast/types"
)

func ExampleTo() {
	age := "42"
	val, err := cast.To(&age, "age", types.IntType, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v (%T)\n", val, val)
	// Output: 42 (int32)
}

func ExampleTo_nullable() {
	opts := &cast.Options{Nullable: true, NullValue: "N/A"}
	raw := "N/A"
	val, err := cast.To(&raw, "score", types.DoubleType, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(val == nil)
	// Output: true
}

func ExampleTo_locale() {
	opts := &cast.Options{Locale: cast.NewLocale(language.German)}
	raw := "1.000,01"
	val, err := cast.To(&raw, "price", types.DecimalType(10, 2), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(val)
	// Output: 1000.01
}
