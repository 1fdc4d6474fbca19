package ir

// DefaultDescription is used for operations that carry no description.
const DefaultDescription = "No summary for this service"

// Parameter represents a declared operation parameter. The parameter location
// (path, query, header) is not tracked: generated routers read every parameter
// from the same request parameter bag.
type Parameter struct {
	Name     string
	Required bool
	Schema   Schema
}

// Response represents one entry of an operation's responses map
type Response struct {
	Code string
	// HasJSON is set when the response declares application/json content
	HasJSON bool
	Schema  Schema
}

// Operation represents a single API operation (path + method) as encountered
// in the document.
type Operation struct {
	OperationID string
	Description string
	Path        string
	Method      string
	// Tags holds every tag declared on the operation. Only the first one
	// decides the group; the rest are kept for tag filtering.
	Tags       []string
	Parameters []Parameter
	// RequestBody is the application/json request body schema, nil when the
	// operation declares no JSON body.
	RequestBody Schema
	Responses   []Response
}

// ResponseCodes returns the status codes of the operation in document order.
func (o Operation) ResponseCodes() []string {
	codes := make([]string, 0, len(o.Responses))
	for _, r := range o.Responses {
		codes = append(codes, r.Code)
	}
	return codes
}

// ReturnType resolves the operation's return type. Every response with JSON
// content overwrites the previous candidate, so the last one in document order
// wins. The second result is false when no response carries JSON content.
func (o Operation) ReturnType() (TypeDescriptor, bool) {
	var (
		ret   TypeDescriptor
		found bool
	)
	for _, r := range o.Responses {
		if !r.HasJSON {
			continue
		}
		ret = Resolve(r.Schema)
		found = true
	}
	return ret, found
}

// TagGroup holds the operations sharing the same first tag, grouped by HTTP method
type TagGroup struct {
	Name        string
	Description string
	Operations  *OrderedMap[string, []Operation]
}

// NewTagGroup creates an empty group for the tag
func NewTagGroup(name, description string) *TagGroup {
	return &TagGroup{
		Name:        name,
		Description: description,
		Operations:  NewOrderedMap[string, []Operation](),
	}
}

// Add appends op to the list of its method.
func (g *TagGroup) Add(op Operation) {
	ops, _ := g.Operations.Get(op.Method)
	g.Operations.Set(op.Method, append(ops, op))
}

// All returns every operation of the group, methods in first-seen order and
// operations in document order within a method.
func (g *TagGroup) All() []Operation {
	var out []Operation
	for _, ops := range g.Operations.All() {
		out = append(out, ops...)
	}
	return out
}

// Len returns the number of operations in the group
func (g *TagGroup) Len() int {
	n := 0
	for _, ops := range g.Operations.All() {
		n += len(ops)
	}
	return n
}

// DuplicateOperationIDs returns the operation ids that appear more than once
// in the group, in first-seen order.
func (g *TagGroup) DuplicateOperationIDs() []string {
	seen := map[string]int{}
	var order []string
	for _, op := range g.All() {
		if seen[op.OperationID] == 0 {
			order = append(order, op.OperationID)
		}
		seen[op.OperationID]++
	}
	var dups []string
	for _, id := range order {
		if seen[id] > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}

// Index is the result of walking a document: tag descriptions plus the tag
// groups in first-appearance order.
type Index struct {
	TagDescriptions map[string]string
	Groups          *OrderedMap[string, *TagGroup]
}

// NewIndex creates an empty index
func NewIndex() Index {
	return Index{
		TagDescriptions: map[string]string{},
		Groups:          NewOrderedMap[string, *TagGroup](),
	}
}

// Add files op under tag, creating the group on first use.
func (x Index) Add(tag string, op Operation) {
	g, ok := x.Groups.Get(tag)
	if !ok {
		g = NewTagGroup(tag, x.TagDescriptions[tag])
		x.Groups.Set(tag, g)
	}
	g.Add(op)
}

// TagGroups returns the groups in tag order
func (x Index) TagGroups() []*TagGroup {
	return x.Groups.Values()
}

// GeneratedUnit is one emitted source file. Path is slash separated and
// relative to the output root unless absolute.
type GeneratedUnit struct {
	Path    string
	Content string
}
