/*
Package operation orchestrates substitution runs for remaprc.

🎯 Purpose:
- Resolves which payload files a run covers (globs minus ignores)
- Validates the mapping table before any file is touched
- Applies the engine per file, sync or async
- Records and reports per-file outcomes

🔄 Flow:
1. Config is validated into a rewrite.Table (hard gate)
2. Payload files are resolved from globs or explicit paths
3. Each file is read, transformed, and written back atomically
4. Status is tracked and summarized

⚡ Key Responsibilities:
- Run orchestration
- File selection policy (the core never walks directories)
- Dry-run and backup handling
- Error propagation with full context

🤝 Collaborators:
- rewrite: the substitution engine
- config: the validated run configuration
- status: file I/O, tracking, and console feedback
*/
package operation
