package xmp

import (
	ld "github.com/piprate/json-gold/ld"
)

// JSON-LD export. XMP is RDF, so the property set maps directly onto a
// JSON-LD node object: each namespace becomes a context term, ordered
// arrays become @list containers, language alternatives become @value/
// @language objects.

// JSONLD returns the properties written so far as a compacted JSON-LD
// document. Only properties written through SetProperty (including the
// named convenience methods) are captured; properties streamed through
// scoped element cursors are not recorded. The writer itself is left
// untouched, so JSONLD may be called before Finish.
func (w *PacketWriter) JSONLD() (map[string]interface{}, error) {
	ctx := map[string]interface{}{}
	doc := map[string]interface{}{}
	if w.about != "" {
		doc["@id"] = w.about
	}
	for _, rec := range w.records {
		prefix := w.names.resolve(rec.ns)
		ctx[prefix] = rec.ns.URI
		doc[prefix+":"+rec.name] = w.jsonldValue(rec.value, rec.ns, ctx)
	}
	doc["@context"] = ctx

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	return proc.Compact(doc, map[string]interface{}{"@context": ctx}, opts)
}

// jsonldValue converts one value tree, registering every namespace it
// touches in the document context. Struct fields without an explicit
// namespace inherit the enclosing property's.
func (w *PacketWriter) jsonldValue(v Value, inherited Namespace, ctx map[string]interface{}) interface{} {
	switch val := v.(type) {
	case Text:
		return string(val)
	case LangAlt:
		entries := make([]interface{}, 0, len(val))
		for _, entry := range val {
			obj := map[string]interface{}{"@value": entry.Value}
			if entry.Lang != "" {
				obj["@language"] = entry.Lang
			}
			entries = append(entries, obj)
		}
		return entries
	case Struct:
		obj := map[string]interface{}{}
		for _, f := range val {
			ns := f.NS
			if ns == (Namespace{}) {
				ns = inherited
			}
			prefix := w.names.resolve(ns)
			ctx[prefix] = ns.URI
			obj[prefix+":"+f.Name] = w.jsonldValue(f.Value, ns, ctx)
		}
		return obj
	case Array:
		items := make([]interface{}, 0, len(val.Items))
		for _, item := range val.Items {
			items = append(items, w.jsonldValue(item, inherited, ctx))
		}
		if val.Type == Ordered {
			return map[string]interface{}{"@list": items}
		}
		return items
	default:
		return nil
	}
}
