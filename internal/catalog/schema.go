package catalog

import "github.com/invopop/jsonschema"

// Schema describes the catalog document for editors and external validators
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(RawCatalog))
	schema.Title = "General Configurator Equipment Catalog"
	schema.Description = "Equipment sets and items consumed by the buff engine"
	return schema
}
