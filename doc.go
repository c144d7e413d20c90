/* Package main: a batch translator from the nand2tetris stack VM language
into Hack symbolic assembly.

The VM language models a 16-bit word stack machine: a global stack grows up
from address 256, and a program manipulates it through arithmetic/logical
commands, memory commands addressed through eight named segments, structured
branching, and a function calling convention. The Hack machine underneath
has three registers (A, D and the memory-addressed M), one jump form, and no
call instruction; everything above that is convention.

Translation is a single sequential pass. The pipeline, leaves first:

  - srcline.Reader yields located lines from one input file
  - parser strips comments and blanks and yields typed VM commands
  - symbolManager mints the unique labels the translation needs
  - emit.go holds one pure fragment generator per opcode family
  - codeWriter drives the emitters, bracketing every fragment with
    `// [start]` / `// [end]` trace comments, and owns the output stream
  - Translator sequences files, and the CLI in main.go resolves paths

The interesting engineering is concentrated in two places. First, the
calling convention: `call` pushes a five-word frame (return address, LCL,
ARG, THIS, THAT), repoints ARG and LCL, and jumps; `return` unwinds it in an
order that is easy to get wrong, captured in emitReturn. Second, label
hygiene: comparisons need a fresh branch target per use, user labels are
scoped per function, and return addresses are minted per call site, all
across a translation unit concatenated from many files. The symbolManager
centralizes that; every label it makes starts with "symbol-", a spelling no
user VM symbol can have since VM label syntax forbids the hyphen.

Register conventions on the Hack side: SP holds the stack pointer, LCL, ARG,
THIS and THAT hold segment bases, R5-R12 back the temp segment, and R13-R15
are scratch (R13 for pop target addresses, R14 and R15 for the frame pointer
and return address during return).

Output is purely symbolic; the downstream Hack assembler resolves labels and
allocates static variables, so emitted code is position-independent and
composes across files.
*/
package main
