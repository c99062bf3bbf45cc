package ports

// IDGenerator produces opaque unique identifiers for newly created records.
// The composition root wires it to a UUID source; tests substitute a
// deterministic sequence.
type IDGenerator func() string
