/*
Package props provides a typed key-value property bag and a tagged
wrapper that attaches properties to arbitrary values.

Values are tagged unions restricted to a small set of kinds (string,
int, float, bool, time), which keeps collections serializable and
comparable without reflection:

	c := props.NewCollection()
	c.Set("name", props.String("example"))
	c.Set("count", props.Int(42))

Collections marshal to and from YAML with kinds preserved; timestamps
use RFC 3339.

Collection and Tagged are not safe for concurrent use.
*/
package props
