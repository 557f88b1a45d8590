package xmp_test

import (
	"fmt"
	"strings"

	"github.com/geoknoesis/xmp-go/xmp"
)

func ExamplePacketWriter() {
	w := xmp.New(xmp.WithPadding(0))
	w.Title(xmp.LangAlt{{Value: "Example Document"}})
	w.Creator("Jane Doe")
	packet, err := w.Finish()
	if err != nil {
		panic(err)
	}
	s := string(packet)
	start := strings.Index(s, "<dc:title>")
	end := strings.Index(s, "</dc:title>") + len("</dc:title>")
	fmt.Println(s[start:end])
	// Output:
	// <dc:title><rdf:Alt><rdf:li>Example Document</rdf:li></rdf:Alt></dc:title>
}

func ExampleDate() {
	fmt.Println(xmp.CalendarDate(2021, 11, 6))
	fmt.Println(xmp.ZonedTime(2021, 11, 6, 11, 30, 24, 60))
	// Output:
	// 2021-11-06
	// 2021-11-06T11:30:24+01:00
}

func ExamplePacketWriter_Property() {
	w := xmp.New(xmp.WithPadding(0))
	prop, err := w.Property(xmp.DublinCore, "subject")
	if err != nil {
		panic(err)
	}
	arr, err := prop.BeginArray(xmp.Unordered)
	if err != nil {
		panic(err)
	}
	for _, keyword := range []string{"metadata", "xmp"} {
		item, err := arr.Item()
		if err != nil {
			panic(err)
		}
		if err := item.Scalar(xmp.Text(keyword)); err != nil {
			panic(err)
		}
		if err := item.Close(); err != nil {
			panic(err)
		}
	}
	if err := arr.Close(); err != nil {
		panic(err)
	}
	if err := prop.Close(); err != nil {
		panic(err)
	}
	packet, err := w.Finish()
	if err != nil {
		panic(err)
	}
	s := string(packet)
	start := strings.Index(s, "<dc:subject>")
	end := strings.Index(s, "</dc:subject>") + len("</dc:subject>")
	fmt.Println(s[start:end])
	// Output:
	// <dc:subject><rdf:Bag><rdf:li>metadata</rdf:li><rdf:li>xmp</rdf:li></rdf:Bag></dc:subject>
}
