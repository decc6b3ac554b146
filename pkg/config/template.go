package config

// RulesTemplate is the starter rules file written by `cxform init`. Every
// built-in rule appears once, commented out except for a minimal working
// example.
const RulesTemplate = `# cxform transformation rules.
# Rules run in order against each input file; each one appends byte-range
# replacements that are applied together when the file is saved.

# Rename a top-level namespace (nested namespaces are left alone).
- NamespaceRename:
    from: third_party_lib
    to: myproject::vendored

# Rewrite #include <...> to #include "..." for vendored headers.
- IncludeToQuotes:
    - concepts.hpp
    - functional.hpp

# Replace an identifier token, optionally anchored by context tokens.
# - TokenIdReplace:
#     from: old_name
#     to: new_name
#     prev:
#       - { token: punct, text: "::" }

# Replace a literal token sequence with new text.
# - ReplaceTokens:
#     tokens:
#       - { token: kwd, text: long }
#       - { token: kwd, text: long }
#     to: int64_t

# Insert a line at the top of a namespace body.
# - AddInNamespace:
#     add: "using namespace myproject;"
#     in: [myproject::vendored]

# Bracket a token sequence, e.g. with preprocessor guards.
# - SurroundTokens:
#     tokens:
#       - { text: DEPRECATED_API }
#     pre: "#if 0\n"
#     post: "\n#endif"

# Materialize edits so far and reparse, when a later rule must see them.
# - ApplyAndReparse: {}
`
