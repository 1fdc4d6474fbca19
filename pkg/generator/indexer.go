package generator

import (
	"log/slog"
	"strings"

	"github.com/blimu-dev/tseo-gen/pkg/ir"
	"github.com/blimu-dev/tseo-gen/pkg/openapi"
)

// BuildIndex groups the document's operations by their first tag, then by
// HTTP method, in document order. Operations that cannot be emitted are
// logged and left out; nothing in the document makes it fail.
func BuildIndex(doc *openapi.Document, logger *slog.Logger) ir.Index {
	idx := ir.NewIndex()
	for _, tag := range doc.Tags {
		idx.TagDescriptions[tag.Name] = tag.Description
	}

	for _, item := range doc.Paths {
		for _, entry := range item.Entries {
			method := strings.ToLower(entry.Key)
			if entry.Operation == nil {
				if openapi.IsHTTPMethod(method) {
					logger.Warn("operation is not an object, skipping", "path", item.Path, "method", method)
				} else {
					logger.Debug("ignoring path item key", "path", item.Path, "key", entry.Key)
				}
				continue
			}
			op := entry.Operation
			if len(op.Tags) == 0 || op.Tags[0] == "" {
				logger.Warn("tags missing for path, skipping", "path", item.Path, "method", method)
				continue
			}
			if op.OperationID == "" {
				logger.Warn("operationId missing for path, skipping", "path", item.Path, "method", method)
				continue
			}
			if len(op.Tags) > 1 {
				logger.Debug("only the first tag is used", "operationId", op.OperationID, "tags", op.Tags)
			}
			idx.Add(op.Tags[0], toRecord(item.Path, method, op, logger))
		}
	}

	for _, g := range idx.TagGroups() {
		if dups := g.DuplicateOperationIDs(); len(dups) > 0 {
			logger.Warn("duplicate operationId in tag, later methods shadow earlier ones", "tag", g.Name, "operationIds", dups)
		}
	}
	return idx
}

func toRecord(path, method string, op *openapi.Operation, logger *slog.Logger) ir.Operation {
	description := ir.DefaultDescription
	if op.Description != nil {
		if d := strings.TrimSpace(*op.Description); d != "" {
			description = d
		}
	}
	params := make([]ir.Parameter, 0, len(op.Parameters))
	for _, p := range op.Parameters {
		if p.Name == "" {
			logger.Warn("parameter without name, skipping", "operationId", op.OperationID)
			continue
		}
		params = append(params, p)
	}
	return ir.Operation{
		OperationID: op.OperationID,
		Description: description,
		Path:        path,
		Method:      method,
		Tags:        op.Tags,
		Parameters:  params,
		RequestBody: op.RequestBody,
		Responses:   op.Responses,
	}
}
