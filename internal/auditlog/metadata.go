package auditlog

import "context"

// Metadata carries run details from a command to the audit writer.
type Metadata struct {
	Source    string
	Whitelist string
	Status    string
	Extracted int
	Added     int
	Total     int
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Zero fields in meta keep
// the value already stored.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(metadataKey{}).(Metadata)
	merged := Metadata{
		Source:    pick(meta.Source, existing.Source),
		Whitelist: pick(meta.Whitelist, existing.Whitelist),
		Status:    pick(meta.Status, existing.Status),
		Extracted: pickInt(meta.Extracted, existing.Extracted),
		Added:     pickInt(meta.Added, existing.Added),
		Total:     pickInt(meta.Total, existing.Total),
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}

// Apply copies the metadata fields onto entry.
func (m Metadata) Apply(entry *AuditEntry) {
	entry.Source = m.Source
	entry.Whitelist = m.Whitelist
	entry.Status = m.Status
	entry.Extracted = m.Extracted
	entry.Added = m.Added
	entry.Total = m.Total
}

func pick(next, fallback string) string {
	if next != "" {
		return next
	}
	return fallback
}

func pickInt(next, fallback int) int {
	if next != 0 {
		return next
	}
	return fallback
}
