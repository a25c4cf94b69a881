package command

const restoreSigintQuestion = "Stopping a restore mid-sequence can leave the VM without its disks attached. Are you sure you want to cancel? [yes/no]"
const restoreStdinErrorMessage = "Couldn't read from Stdin, if you still want to stop the restore send SIGTERM."
const restoreCleanupAdvisedNotice = "Check the VM's disk attachments in the portal before using it; disks created by this run must be cleaned up manually."
