// Package model defines the parameter editor data model: the read-only
// parameter definitions a form renders, the string values bound to them, the
// pass-through color tags, and the Model unit exchanged between an editor and
// its owner. JSON tags follow the wire shape used by document files
// (`paramId`, `paramValues`) so snapshots serialize deterministically.
package model
