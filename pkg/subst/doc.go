/*
Package subst rewrites delimited placeholders in a serialized template.

	+-------------+      +-------------+      +-------------+
	|  Document   | ---> |    Text     | ---> |  Document   |
	|   (tree)    |      | (rule pass) |      |   (fresh)   |
	+-------------+      +------+------+      +-------------+
	                            |
	                     rule 0, rule 1, ...

🎯 Purpose:
- Serializes a JSON-compatible document to text
- Applies an ordered list of search/replace rules to that text
- Parses the result back so the output is still a valid document

🔄 Flow:
 1. Encode the document (compact JSON)
 2. For each rule, replace every match of delimiter+search+delimiter
 3. Decode the final text; fail with ParseError when it no longer parses

⚠️ Sharp edges:
The search text and the delimiter are regular expression source, not literal
text. A search of "a.b" matches "a-b" too, and a delimiter of "$$" anchors
instead of matching dollar signs. Quote them with regexp.QuoteMeta when a
literal match is wanted. The syntax is Go's RE2, so backreferences and
lookaround are rejected when the engine is built.

The replacement uses the ECMAScript replacement syntax ($&, $1, $<name>, $$),
and "${name}" is left as is. The shorthand rule relies on that: the bare
name "stage" becomes a rule replacing ##stage## with ${stage}.

Rules with a missing search or replace are kept in place but do nothing.

🔍 Example:

	engine, err := subst.New("##", []subst.Rule{
		subst.Pair("hello", "foo"),
		subst.Shorthand("stage"),
	}, subst.WithRecorder(subst.ZerologRecorder(ctx)))

	out, err := engine.Apply(ctx, template)
*/
package subst
