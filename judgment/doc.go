// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package judgment implements Majority Judgment.

Ballot cells are read as grades rather than ranks; lower is still better
(0 could mean "excellent", 5 "reject"). A missing grade counts as the worst
grade used anywhere on the ballot.

# Majority Grade

Each candidate's grades are sorted best first and the majority grade is the
lower middlemost one: for 4 grades, the third.

# Tie-breaking

Candidates sharing the best majority grade each lose one copy of that grade
and are compared again, until one remains or no grade is left:

	winners := judgment.Winners(b)

# Profiles

Profiles exposes the full distribution with p10, p90 and mean, computed
by linear interpolation between the closest ranks.
*/
package judgment
