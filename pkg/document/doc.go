// Package document loads parameter editor documents: the param definitions
// plus the seed model, stored as JSON or YAML.
//
//	params:
//	  - id: 1
//	    name: Purpose
//	    type: string
//	model:
//	  paramValues:
//	    - paramId: 1
//	      value: casual
//	  colors: []
package document
