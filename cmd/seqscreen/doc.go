// 18 Oct 2026

/*
Seqscreen aligns sequences and screens reads for contamination.

Usage:

	seqscreen align [flags] seq1 seq2
	seqscreen align [flags] --file1 f1.fa --file2 f2.fa
	seqscreen screen [flags] reads.fq.gz contaminants.fa
	seqscreen randseq [flags] nseq length
	seqscreen count [--total] file...

align prints the best local alignment of two sequences, given on the
command line or as the first sequence of a fasta or fastq file.

screen takes every read and looks for a local alignment with any of the
contaminants that scores at least the cutoff. Both strands are tried
unless --both-strands=false. Reads which pass are written with --out,
the flagged ones are listed in a tab separated file with --report.

randseq writes random DNA in fasta format. With --frag, a fraction of
the sequences get a fragment planted in them, which is handy for
checking screen.

count lists each sequence with its length, gaps not counted, or with
--total just the number of sequences in each file.

Scoring flags (all commands):

	--sigma     gap penalty per position (3)
	--match     score for identical symbols (1)
	--mismatch  score for different symbols (-2)
	--cutoff    screening threshold (6)
	--matrix    substitution matrix, "blosum62", "dna" or a file name

Settings can also come from a config file (--config) or from
environment variables like SEQSCREEN_CUTOFF. Flags win over the
environment, which wins over the config file.

Exit status is 0 on success, 1 on failure and 2 for usage errors.
*/
package main
