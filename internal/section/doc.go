// Package section locates the participation eligibility clause in normalized
// announcement text.
//
// Announcements have no consistent markup, so the clause is found by a
// header line (참가자격 or 입찰참가자격, optionally numbered) and its body runs
// until the next thing that looks like a heading, a blank line, or the end of
// the text. Heading detection is an ordered list of pattern.Matcher values.
package section
